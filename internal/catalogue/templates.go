package catalogue

import "github.com/rich365/rich365/internal/domain"

var builtinSections = []section{
	{
		Category: domain.CategoryLearning,
		Templates: []domain.ActionTemplate{
			{Title: "学习一个新的投资知识", Description: "每天学一点，财商就会慢慢提升。", Emoji: "📚"},
			{Title: "研究一个成功案例", Description: "从别人的成功中找到可复制的方法。", Emoji: "🔍"},
			{Title: "阅读一篇行业报告", Description: "了解行业趋势，把握赚钱机会。", Emoji: "📊", PersonalityPreference: traits("N", "T")},
			{Title: "学习一个新工具", Description: "工具用得好，效率翻倍。", Emoji: "🛠️", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}},
			{Title: "观看一个商业课程", Description: "系统学习，快速成长。", Emoji: "🎓"},
			{Title: "研究竞争对手策略", Description: "知己知彼，百战不殆。", Emoji: "🎯", PersonalityPreference: traits("T", "J")},
			{Title: "学习数据分析技能", Description: "用数据驱动决策。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleInvestor, domain.RoleEntrepreneur}},
			{Title: "深入研究用户需求", Description: "理解需求才能创造价值。", Emoji: "🔬", PersonalityPreference: traits("N", "F")},
			{Title: "探索新的职业方向", Description: "多尝试才能找到适合自己的路。", Emoji: "🧭", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "学习职场沟通技巧", Description: "沟通能力决定职场高度。", Emoji: "💬", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "研究内容创作技巧", Description: "好内容是影响力的基础。", Emoji: "✨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "学习投资理财知识", Description: "理财是一生的必修课。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "参加技能培训课程", Description: "持续学习，保持竞争力。", Emoji: "📖", RolePreference: []domain.Role{domain.RoleLearner, domain.RoleEmployee}},
			{Title: "研究商业模式创新", Description: "好的商业模式是成功的关键。", Emoji: "💡", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "学习时间管理方法", Description: "时间管理好，效率自然高。", Emoji: "⏰", RolePreference: []domain.Role{domain.RoleEmployee, domain.RoleEntrepreneur}},
			{Title: "研究行业趋势变化", Description: "把握趋势，抓住机会。", Emoji: "🔮", PersonalityPreference: traits("N")},
			{Title: "学习个人品牌打造", Description: "品牌是最好的护城河。", Emoji: "⭐", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "研究副业赚钱方法", Description: "多一份收入，多一份保障。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleEmployee, domain.RoleLearner}},
			{Title: "学习资产配置策略", Description: "合理配置，降低风险。", Emoji: "📊", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "研究用户增长策略", Description: "增长是商业的核心。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}},
		},
	},
	{
		Category: domain.CategoryNetworking,
		Templates: []domain.ActionTemplate{
			{Title: "主动联系一个潜在客户", Description: "机会不会自己来，要主动去创造。", Emoji: "📞", PersonalityPreference: traits("E"), RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "参加一个行业活动", Description: "拓展人脉，发现新机会。", Emoji: "🤝", PersonalityPreference: traits("E")},
			{Title: "约见一位行业前辈", Description: "前辈的经验是最宝贵的财富。", Emoji: "☕", PersonalityPreference: traits("E", "F")},
			{Title: "加入一个专业社群", Description: "找到志同道合的伙伴。", Emoji: "👥", PersonalityPreference: traits("E")},
			{Title: "为他人提供价值", Description: "先付出，后收获。", Emoji: "🎁", PersonalityPreference: traits("F")},
			{Title: "建立合作关系", Description: "合作共赢，1+1>2。", Emoji: "🤜🤛", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "维护老客户关系", Description: "老客户是最稳定的收入来源。", Emoji: "💝", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "拓展跨界人脉", Description: "跨界合作带来新机会。", Emoji: "🌐", PersonalityPreference: traits("N", "E")},
			{Title: "参加职场社交活动", Description: "人脉就是钱脉。", Emoji: "🎉", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "与创作者交流合作", Description: "互相学习，共同成长。", Emoji: "🤝", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "参加投资者聚会", Description: "交流投资心得，拓展视野。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "寻找职业导师", Description: "导师的指导能少走弯路。", Emoji: "🧑‍🏫", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "建立客户信任关系", Description: "信任是成交的基础。", Emoji: "🤝", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "参与行业交流会", Description: "了解行业动态，把握机会。", Emoji: "📢", PersonalityPreference: traits("E")},
			{Title: "与同行建立联系", Description: "同行不是冤家，是资源。", Emoji: "👥", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}},
			{Title: "拓展职场人脉圈", Description: "人脉广，机会多。", Emoji: "🌟", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "参加创业者聚会", Description: "与创业者交流，激发灵感。", Emoji: "🚀", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleLearner}},
			{Title: "建立粉丝社群", Description: "社群是最好的流量池。", Emoji: "👨‍👩‍👧‍👦", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "与投资人建立联系", Description: "好的投资人能带来资源。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "参加职业发展讲座", Description: "学习他人经验，规划自己未来。", Emoji: "🎓", RolePreference: []domain.Role{domain.RoleLearner, domain.RoleEmployee}},
		},
	},
	{
		Category: domain.CategoryContent,
		Templates: []domain.ActionTemplate{
			{Title: "发布一条有价值的内容", Description: "分享你的专业见解，建立个人影响力。", Emoji: "✍️", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "创作一个新的作品", Description: "用创意打开财富之门。", Emoji: "🎨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "录制一个短视频", Description: "视频是最好的传播方式。", Emoji: "🎬", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "写一篇深度文章", Description: "深度内容建立专业形象。", Emoji: "📝", PersonalityPreference: traits("I", "N")},
			{Title: "设计一个爆款标题", Description: "好标题是成功的一半。", Emoji: "💡", PersonalityPreference: traits("N")},
			{Title: "优化内容发布策略", Description: "策略对了，事半功倍。", Emoji: "📅", PersonalityPreference: traits("J")},
			{Title: "分析内容数据表现", Description: "数据告诉你什么内容受欢迎。", Emoji: "📊", PersonalityPreference: traits("T")},
			{Title: "创建内容日历", Description: "有计划的创作更高效。", Emoji: "🗓️", PersonalityPreference: traits("J")},
			{Title: "分享工作心得体会", Description: "分享是最好的学习方式。", Emoji: "💭", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "记录创业心路历程", Description: "记录成长，激励自己。", Emoji: "📖", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "分享投资理财经验", Description: "分享经验，帮助他人。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "记录学习成长过程", Description: "记录是最好的复盘。", Emoji: "📚", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "制作教程类内容", Description: "教学相长，共同进步。", Emoji: "🎓", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "分享行业洞察观点", Description: "专业观点建立权威。", Emoji: "🔍", PersonalityPreference: traits("N", "T")},
			{Title: "创作故事类内容", Description: "故事更容易打动人心。", Emoji: "📖", PersonalityPreference: traits("N", "F")},
			{Title: "制作数据可视化内容", Description: "数据可视化更有说服力。", Emoji: "📊", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "分享职场技能干货", Description: "干货内容最受欢迎。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "记录创作灵感想法", Description: "灵感稍纵即逝，要及时记录。", Emoji: "💡", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "分享商业案例分析", Description: "案例分析提升商业认知。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "制作学习笔记总结", Description: "总结是深度学习的关键。", Emoji: "📝", RolePreference: []domain.Role{domain.RoleLearner}},
		},
	},
	{
		Category: domain.CategoryOptimization,
		Templates: []domain.ActionTemplate{
			{Title: "优化你的工作流程", Description: "效率提升10%，收入就可能增加10%。", Emoji: "⚙️", PersonalityPreference: traits("T", "J")},
			{Title: "优化产品页面", Description: "细节决定转化率。", Emoji: "💻", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "提升时间管理能力", Description: "时间就是金钱。", Emoji: "⏰", PersonalityPreference: traits("J")},
			{Title: "简化业务流程", Description: "复杂的流程会降低效率。", Emoji: "🔄", PersonalityPreference: traits("T")},
			{Title: "优化定价策略", Description: "价格定得对，利润翻一倍。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "改进客户体验", Description: "体验好，客户才会回头。", Emoji: "⭐", PersonalityPreference: traits("F")},
			{Title: "自动化重复工作", Description: "把时间用在更有价值的事上。", Emoji: "🤖", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "优化成本结构", Description: "降低成本就是增加利润。", Emoji: "📉", PersonalityPreference: traits("T", "J")},
			{Title: "优化职场工作效率", Description: "高效工作，准时下班。", Emoji: "⚡", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "优化内容创作流程", Description: "流程优化，产出更多。", Emoji: "🔧", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "优化投资组合配置", Description: "定期优化，提升收益。", Emoji: "📊", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "优化学习方法策略", Description: "方法对了，事半功倍。", Emoji: "📚", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "优化客户服务流程", Description: "服务好，口碑自然好。", Emoji: "🎯", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "优化个人时间分配", Description: "时间分配决定人生方向。", Emoji: "⏱️", PersonalityPreference: traits("J")},
			{Title: "优化内容分发渠道", Description: "多渠道分发，扩大影响力。", Emoji: "📡", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "优化职业发展路径", Description: "规划清晰，目标明确。", Emoji: "🗺️", RolePreference: []domain.Role{domain.RoleEmployee, domain.RoleLearner}},
			{Title: "优化商业运营模式", Description: "模式优化，效益倍增。", Emoji: "🚀", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "优化资金使用效率", Description: "资金效率决定投资回报。", Emoji: "💵", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "优化技能学习路径", Description: "路径清晰，学习高效。", Emoji: "🎯", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "优化工作生活平衡", Description: "平衡才能走得更远。", Emoji: "⚖️", RolePreference: []domain.Role{domain.RoleEmployee}},
		},
	},
	{
		Category: domain.CategorySales,
		Templates: []domain.ActionTemplate{
			{Title: "完成一次销售转化", Description: "行动才有结果。", Emoji: "💸", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "设计一个促销活动", Description: "好活动能带来爆发式增长。", Emoji: "🎉", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "优化销售话术", Description: "话术对了，成交率翻倍。", Emoji: "💬", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "跟进潜在客户", Description: "持续跟进才能成交。", Emoji: "📲", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "分析客户需求", Description: "了解需求才能精准营销。", Emoji: "🎯", PersonalityPreference: traits("N", "T")},
			{Title: "创建销售漏斗", Description: "系统化销售更高效。", Emoji: "🔻", PersonalityPreference: traits("T", "J")},
			{Title: "提升客单价", Description: "同样的客户，更高的收入。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "开发新客户渠道", Description: "多渠道获客更稳定。", Emoji: "🌊", PersonalityPreference: traits("N", "E")},
			{Title: "推广个人服务产品", Description: "好产品需要好推广。", Emoji: "📢", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "争取职场加薪机会", Description: "主动争取，才有可能。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "寻找投资变现机会", Description: "把握时机，及时变现。", Emoji: "💵", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "尝试技能变现方式", Description: "技能变现，增加收入。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "优化产品定价策略", Description: "定价是门艺术。", Emoji: "🏷️", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "开发新的收入来源", Description: "多元化收入更安全。", Emoji: "🌟", PersonalityPreference: traits("N")},
			{Title: "提升内容变现能力", Description: "内容变现是长期价值。", Emoji: "💎", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "争取职场晋升机会", Description: "晋升意味着更高收入。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "寻找合作变现机会", Description: "合作能创造更大价值。", Emoji: "🤝", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}},
			{Title: "优化投资收益策略", Description: "策略优化，收益提升。", Emoji: "📊", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "探索副业赚钱机会", Description: "副业是额外收入来源。", Emoji: "💡", RolePreference: []domain.Role{domain.RoleEmployee, domain.RoleLearner}},
			{Title: "建立被动收入系统", Description: "被动收入是财务自由的关键。", Emoji: "🏖️", PersonalityPreference: traits("N", "J")},
		},
	},
	{
		Category: domain.CategoryInvestment,
		Templates: []domain.ActionTemplate{
			{Title: "研究一个投资机会", Description: "机会总是留给有准备的人。", Emoji: "💎", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "优化资产配置", Description: "分散投资，降低风险。", Emoji: "📊", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "学习理财知识", Description: "会赚钱更要会理财。", Emoji: "💰"},
			{Title: "复盘投资决策", Description: "总结经验，避免重复犯错。", Emoji: "📝", PersonalityPreference: traits("T", "J")},
			{Title: "研究市场趋势", Description: "顺势而为，事半功倍。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "建立投资组合", Description: "系统化投资更稳健。", Emoji: "🎯", PersonalityPreference: traits("T", "J")},
			{Title: "评估风险收益", Description: "理性决策，控制风险。", Emoji: "⚖️", PersonalityPreference: traits("T")},
			{Title: "学习价值投资", Description: "长期主义才能获得复利。", Emoji: "🌱", PersonalityPreference: traits("N", "J")},
			{Title: "投资个人成长", Description: "投资自己是最好的投资。", Emoji: "🎓", RolePreference: []domain.Role{domain.RoleLearner, domain.RoleEmployee}},
			{Title: "投资技能提升", Description: "技能是最好的资产。", Emoji: "💪", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "投资人脉关系", Description: "人脉是无形资产。", Emoji: "🤝", PersonalityPreference: traits("E")},
			{Title: "投资内容创作", Description: "内容是长期资产。", Emoji: "✍️", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "投资商业项目", Description: "好项目带来好回报。", Emoji: "🚀", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleInvestor}},
			{Title: "投资健康管理", Description: "健康是一切的基础。", Emoji: "🏃", PersonalityPreference: traits("S")},
			{Title: "投资品牌建设", Description: "品牌是长期价值。", Emoji: "⭐", RolePreference: []domain.Role{domain.RoleCreator, domain.RoleEntrepreneur}},
			{Title: "投资工具设备", Description: "好工具提升效率。", Emoji: "🛠️", RolePreference: []domain.Role{domain.RoleCreator, domain.RoleEntrepreneur}},
			{Title: "投资知识产权", Description: "知识产权是核心资产。", Emoji: "📚", PersonalityPreference: traits("N")},
			{Title: "投资时间管理", Description: "时间是最宝贵的资源。", Emoji: "⏰", PersonalityPreference: traits("J")},
			{Title: "投资职业发展", Description: "职业发展决定收入上限。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "投资学习成长", Description: "持续学习，持续成长。", Emoji: "🌱", RolePreference: []domain.Role{domain.RoleLearner}},
		},
	},
	{
		Category: domain.CategoryBranding,
		Templates: []domain.ActionTemplate{
			{Title: "打造个人品牌", Description: "品牌是最好的护城河。", Emoji: "✨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "设计品牌视觉", Description: "视觉统一提升专业度。", Emoji: "🎨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "明确品牌定位", Description: "定位清晰才能吸引精准用户。", Emoji: "🎯", PersonalityPreference: traits("N", "T")},
			{Title: "讲述品牌故事", Description: "故事让品牌更有温度。", Emoji: "📖", PersonalityPreference: traits("N", "F")},
			{Title: "提升品牌影响力", Description: "影响力就是变现能力。", Emoji: "🌟", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "建立品牌信任", Description: "信任是成交的基础。", Emoji: "🤝", PersonalityPreference: traits("F")},
			{Title: "扩大品牌曝光", Description: "曝光越多，机会越多。", Emoji: "📢", PersonalityPreference: traits("E")},
			{Title: "打造差异化优势", Description: "与众不同才能脱颖而出。", Emoji: "💫", PersonalityPreference: traits("N")},
			{Title: "建立职场个人品牌", Description: "职场品牌决定职业高度。", Emoji: "👔", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "打造创业品牌形象", Description: "品牌形象影响客户信任。", Emoji: "🏢", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "建立专业投资形象", Description: "专业形象吸引合作机会。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "塑造学习者形象", Description: "学习形象吸引导师关注。", Emoji: "📚", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "优化社交媒体形象", Description: "社交形象是第一印象。", Emoji: "📱", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "建立行业专家形象", Description: "专家形象带来溢价能力。", Emoji: "🎓", PersonalityPreference: traits("N", "T")},
			{Title: "打造可信赖形象", Description: "可信赖是长期合作的基础。", Emoji: "🛡️", PersonalityPreference: traits("S", "J")},
			{Title: "建立创新者形象", Description: "创新形象吸引机会。", Emoji: "💡", PersonalityPreference: traits("N", "P")},
			{Title: "塑造领导者形象", Description: "领导力提升影响力。", Emoji: "👑", PersonalityPreference: traits("E", "J")},
			{Title: "建立专业服务形象", Description: "专业服务赢得客户。", Emoji: "⭐", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "打造高效执行形象", Description: "执行力是核心竞争力。", Emoji: "⚡", PersonalityPreference: traits("S", "J")},
			{Title: "建立持续成长形象", Description: "成长形象激励自己和他人。", Emoji: "🌱", RolePreference: []domain.Role{domain.RoleLearner}},
		},
	},
	{
		Category: domain.CategorySkill,
		Templates: []domain.ActionTemplate{
			{Title: "提升专业技能", Description: "技能是最好的投资。", Emoji: "🎓"},
			{Title: "学习新技术", Description: "技术迭代快，要持续学习。", Emoji: "💻", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleLearner}},
			{Title: "练习演讲能力", Description: "会表达才能影响更多人。", Emoji: "🎤", PersonalityPreference: traits("E")},
			{Title: "提升写作能力", Description: "写作是最好的思考方式。", Emoji: "✍️", PersonalityPreference: traits("I", "N")},
			{Title: "学习设计思维", Description: "设计思维帮你解决问题。", Emoji: "🎨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "提升沟通能力", Description: "沟通顺畅，合作才能愉快。", Emoji: "💬", PersonalityPreference: traits("E", "F")},
			{Title: "学习项目管理", Description: "管理好项目才能按时交付。", Emoji: "📋", PersonalityPreference: traits("J")},
			{Title: "提升数据思维", Description: "用数据说话更有说服力。", Emoji: "📊", PersonalityPreference: traits("T")},
			{Title: "学习职场技能", Description: "职场技能决定职业发展。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "提升创作技能", Description: "创作技能是核心竞争力。", Emoji: "🎬", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "学习投资分析", Description: "分析能力决定投资回报。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "提升学习能力", Description: "学习能力是元能力。", Emoji: "🧠", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "学习商业谈判", Description: "谈判能力影响商业结果。", Emoji: "🤝", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "提升领导能力", Description: "领导力带来更多机会。", Emoji: "👑", PersonalityPreference: traits("E", "J")},
			{Title: "学习营销技能", Description: "营销是商业的核心。", Emoji: "📢", RolePreference: []domain.Role{domain.RoleEntrepreneur, domain.RoleCreator}},
			{Title: "提升财务管理", Description: "财务管理是基本功。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleInvestor, domain.RoleEntrepreneur}},
			{Title: "学习时间管理", Description: "时间管理提升效率。", Emoji: "⏰", PersonalityPreference: traits("J")},
			{Title: "提升问题解决能力", Description: "解决问题创造价值。", Emoji: "🧩", PersonalityPreference: traits("T")},
			{Title: "学习创新思维", Description: "创新思维带来突破。", Emoji: "💡", PersonalityPreference: traits("N")},
			{Title: "提升执行能力", Description: "执行力决定成败。", Emoji: "⚡", PersonalityPreference: traits("S", "J")},
		},
	},
	{
		Category: domain.CategoryMindset,
		Templates: []domain.ActionTemplate{
			{Title: "写下今天的财富目标", Description: "明确的目标是行动的起点。", Emoji: "🎯", PersonalityPreference: traits("J")},
			{Title: "培养富人思维", Description: "思维决定财富上限。", Emoji: "🧠"},
			{Title: "克服拖延症", Description: "行动才有结果。", Emoji: "⚡", PersonalityPreference: traits("P")},
			{Title: "建立成长型思维", Description: "相信自己可以不断进步。", Emoji: "🌱", PersonalityPreference: traits("N")},
			{Title: "保持积极心态", Description: "心态好，运气才会好。", Emoji: "😊", PersonalityPreference: traits("F")},
			{Title: "设定长期目标", Description: "长期主义才能走得更远。", Emoji: "🗺️", PersonalityPreference: traits("N", "J")},
			{Title: "培养自律习惯", Description: "自律是成功的基础。", Emoji: "💪", PersonalityPreference: traits("J")},
			{Title: "突破舒适区", Description: "成长总是发生在舒适区之外。", Emoji: "🚀", PersonalityPreference: traits("N", "P")},
			{Title: "培养创业者思维", Description: "创业思维看到机会。", Emoji: "💡", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "建立职场成长思维", Description: "成长思维带来晋升。", Emoji: "📈", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "培养创作者心态", Description: "创作心态激发灵感。", Emoji: "🎨", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "建立投资者思维", Description: "投资思维看长期价值。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "培养学习者心态", Description: "学习心态保持谦逊。", Emoji: "📚", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "建立长期主义思维", Description: "长期主义获得复利。", Emoji: "🌳", PersonalityPreference: traits("N", "J")},
			{Title: "培养结果导向思维", Description: "结果导向提升效率。", Emoji: "🎯", PersonalityPreference: traits("T", "J")},
			{Title: "建立用户思维", Description: "用户思维创造价值。", Emoji: "👥", PersonalityPreference: traits("F")},
			{Title: "培养商业思维", Description: "商业思维发现机会。", Emoji: "💼", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "建立系统思维", Description: "系统思维解决根本问题。", Emoji: "🔄", PersonalityPreference: traits("N", "T")},
			{Title: "培养行动思维", Description: "行动思维快速验证。", Emoji: "⚡", PersonalityPreference: traits("S", "P")},
			{Title: "建立价值思维", Description: "价值思维创造财富。", Emoji: "💎", PersonalityPreference: traits("N")},
		},
	},
	{
		Category: domain.CategoryExecution,
		Templates: []domain.ActionTemplate{
			{Title: "完成一个小目标", Description: "小目标积累成大成就。", Emoji: "✅"},
			{Title: "测试一个新想法", Description: "快速验证，快速迭代。", Emoji: "🧪", PersonalityPreference: traits("N", "P")},
			{Title: "启动一个副业项目", Description: "多一份收入，多一份保障。", Emoji: "🚀", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "复盘本周进展", Description: "定期复盘，持续优化。", Emoji: "📊", PersonalityPreference: traits("J")},
			{Title: "制定行动计划", Description: "计划清晰，执行才有力。", Emoji: "📝", PersonalityPreference: traits("J")},
			{Title: "快速试错迭代", Description: "失败是成功之母。", Emoji: "🔄", PersonalityPreference: traits("P")},
			{Title: "专注核心任务", Description: "聚焦才能产生突破。", Emoji: "🎯", PersonalityPreference: traits("J")},
			{Title: "突破一个难题", Description: "解决难题就是成长。", Emoji: "🧩", PersonalityPreference: traits("T")},
			{Title: "推进创业项目进度", Description: "持续推进，才能成功。", Emoji: "🚀", RolePreference: []domain.Role{domain.RoleEntrepreneur}},
			{Title: "完成职场重要任务", Description: "完成任务，展现价值。", Emoji: "✅", RolePreference: []domain.Role{domain.RoleEmployee}},
			{Title: "发布创作作品", Description: "作品发布，才有价值。", Emoji: "🎬", RolePreference: []domain.Role{domain.RoleCreator}},
			{Title: "执行投资决策", Description: "决策后要果断执行。", Emoji: "💰", RolePreference: []domain.Role{domain.RoleInvestor}},
			{Title: "完成学习计划", Description: "完成计划，积累成长。", Emoji: "📚", RolePreference: []domain.Role{domain.RoleLearner}},
			{Title: "推进重要项目", Description: "重要项目优先执行。", Emoji: "🎯", PersonalityPreference: traits("J")},
			{Title: "完成每日行动清单", Description: "清单完成，成就感满满。", Emoji: "✅", PersonalityPreference: traits("J")},
			{Title: "快速响应市场变化", Description: "快速响应，抓住机会。", Emoji: "⚡", PersonalityPreference: traits("S", "P")},
			{Title: "执行优化改进方案", Description: "方案执行，才能见效。", Emoji: "🔧", PersonalityPreference: traits("T", "J")},
			{Title: "完成阶段性目标", Description: "阶段目标，里程碑。", Emoji: "🏆", PersonalityPreference: traits("J")},
			{Title: "推进合作项目", Description: "合作项目，共同推进。", Emoji: "🤝", PersonalityPreference: traits("E")},
			{Title: "完成挑战任务", Description: "挑战完成，能力提升。", Emoji: "💪", PersonalityPreference: traits("S", "P")},
		},
	},
}
